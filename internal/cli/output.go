package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case []User:
		o.printUsers(v)
	case AuthResult:
		o.printAuthResult(v)
	case Message:
		o.printMessage(v)
	case []Message:
		o.printMessages(v)
	case Processor:
		o.printProcessor(v)
	case []Processor:
		o.printProcessors(v)
	case []Machine:
		o.printMachines(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResult combines user and token
type AuthResult struct {
	User         User      `json:"user"`
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Message response type
type Message struct {
	ID     int64     `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Phone  string    `json:"phone,omitempty"`
	Body   string    `json:"body"`
	SentAt time.Time `json:"sent_at"`
}

// Processor response type
type Processor struct {
	ID    int64  `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
}

// Machine response type
type Machine struct {
	ID        int64  `json:"id"`
	Brand     string `json:"brand"`
	Model     string `json:"model"`
	Display   string `json:"display"`
	MemoryGB  int    `json:"memory_gb"`
	DiskGB    int    `json:"disk_gb"`
	VideoCard string `json:"video_card"`
	Price     int    `json:"price"`
	CPUBrand  string `json:"cpu_brand"`
	CPUModel  string `json:"cpu_model"`
	OSName    string `json:"os_name"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	adminStr := "no"
	if u.IsAdmin {
		adminStr = "yes"
	}
	fmt.Printf("User: %s (id %d)\n", u.Username, u.ID)
	fmt.Printf("Admin: %s\n", adminStr)
	fmt.Printf("Created: %s\n", u.CreatedAt.Format(time.RFC3339))
}

func (o *Output) printUsers(users []User) {
	fmt.Printf("Users (%d):\n", len(users))
	for _, u := range users {
		marker := ""
		if u.IsAdmin {
			marker = " [admin]"
		}
		fmt.Printf("  %d: %s%s\n", u.ID, u.Username, marker)
	}
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.SessionToken)
	fmt.Printf("Expires: %s\n", a.ExpiresAt.Format(time.RFC3339))
}

func (o *Output) printMessage(m Message) {
	fmt.Printf("Message #%d from %s <%s>\n", m.ID, m.Name, m.Email)
	if m.Phone != "" {
		fmt.Printf("Phone: %s\n", m.Phone)
	}
	fmt.Printf("Sent: %s\n", m.SentAt.Format(time.RFC3339))
	fmt.Printf("%s\n", m.Body)
}

func (o *Output) printMessages(msgs []Message) {
	fmt.Printf("Messages (%d):\n", len(msgs))
	for _, m := range msgs {
		fmt.Printf("  #%d %s <%s> at %s\n", m.ID, m.Name, m.Email, m.SentAt.Format(time.RFC3339))
	}
}

func (o *Output) printProcessor(p Processor) {
	fmt.Printf("Processor #%d: %s %s\n", p.ID, p.Brand, p.Model)
}

func (o *Output) printProcessors(ps []Processor) {
	fmt.Printf("Processors (%d):\n", len(ps))
	for _, p := range ps {
		fmt.Printf("  %d: %s %s\n", p.ID, p.Brand, p.Model)
	}
}

func (o *Output) printMachines(ms []Machine) {
	fmt.Printf("Machines (%d):\n", len(ms))
	for _, m := range ms {
		fmt.Printf("  %d: %s %s | %s %s | %s | %dGB RAM, %dGB disk | %s | %d Ft\n",
			m.ID, m.Brand, m.Model, m.CPUBrand, m.CPUModel, m.OSName, m.MemoryGB, m.DiskGB, m.VideoCard, m.Price)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
