package model

// Processor is the CRUD-managed resource.
type Processor struct {
	ID    int64
	Brand string
	Model string
}

// OperatingSystem is referenced by machines; managed only via seed data.
type OperatingSystem struct {
	ID   int64
	Name string
}

// Machine is a row of the joined inventory view: the machine itself plus
// the processor and operating system it references.
type Machine struct {
	ID        int64
	Brand     string
	Model     string
	Display   string
	MemoryGB  int
	DiskGB    int
	VideoCard string
	Price     int

	ProcessorID int64
	OSID        int64

	CPUBrand string
	CPUModel string
	OSName   string
}
