package response

import (
	"time"

	"github.com/szabolcsj/weblabor/internal/model"
	"github.com/szabolcsj/weblabor/internal/services/auth"
)

// User represents a user in API responses
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:        u.ID,
		Username:  u.Username,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	User         User      `json:"user"`
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		User:         UserFromModel(&s.User),
		SessionToken: s.Token,
		ExpiresAt:    s.ExpiresAt,
	}
}

// Message represents a contact message in API responses
type Message struct {
	ID     int64     `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Phone  string    `json:"phone,omitempty"`
	Body   string    `json:"body"`
	SentAt time.Time `json:"sent_at"`
}

// MessageFromModel converts a model.Message to a response Message
func MessageFromModel(m *model.Message) Message {
	return Message{
		ID:     m.ID,
		Name:   m.Name,
		Email:  m.Email,
		Phone:  m.Phone,
		Body:   m.Body,
		SentAt: m.SentAt,
	}
}

// MessagesFromModel converts a slice of messages
func MessagesFromModel(msgs []*model.Message) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, MessageFromModel(m))
	}
	return out
}

// Processor represents a processor in API responses
type Processor struct {
	ID    int64  `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
}

// ProcessorFromModel converts a model.Processor to a response Processor
func ProcessorFromModel(p *model.Processor) Processor {
	return Processor{
		ID:    p.ID,
		Brand: p.Brand,
		Model: p.Model,
	}
}

// ProcessorsFromModel converts a slice of processors
func ProcessorsFromModel(ps []*model.Processor) []Processor {
	out := make([]Processor, 0, len(ps))
	for _, p := range ps {
		out = append(out, ProcessorFromModel(p))
	}
	return out
}

// Machine represents a machine with its joined processor and OS names
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

// MachineFromModel converts a model.Machine to a response Machine
func MachineFromModel(m *model.Machine) Machine {
	return Machine{
		ID:        m.ID,
		Brand:     m.Brand,
		Model:     m.Model,
		Display:   m.Display,
		MemoryGB:  m.MemoryGB,
		DiskGB:    m.DiskGB,
		VideoCard: m.VideoCard,
		Price:     m.Price,
		CPUBrand:  m.CPUBrand,
		CPUModel:  m.CPUModel,
		OSName:    m.OSName,
	}
}

// MachinesFromModel converts a slice of machines
func MachinesFromModel(ms []*model.Machine) []Machine {
	out := make([]Machine, 0, len(ms))
	for _, m := range ms {
		out = append(out, MachineFromModel(m))
	}
	return out
}

// UsersFromModel converts a slice of users
func UsersFromModel(us []*model.User) []User {
	out := make([]User, 0, len(us))
	for _, u := range us {
		out = append(out, UserFromModel(u))
	}
	return out
}
