package content

import "time"

// About is the company pitch shown by the about command and the website hero.
type About struct {
	Name        string `json:"name" yaml:"name"`
	Mission     string `json:"mission" yaml:"mission"`
	Description string `json:"description" yaml:"description"`
	Urgency     string `json:"urgency" yaml:"urgency"`
}

type Contact struct {
	Email string `json:"email" yaml:"email"`
	Demo  string `json:"demo" yaml:"demo"`
	Pitch string `json:"pitch" yaml:"pitch"`
}

// SystemInfo drives the terminal greeting.
type SystemInfo struct {
	Version        string `json:"version" yaml:"version"`
	Status         string `json:"status" yaml:"status"`
	WelcomeMessage string `json:"welcome_message" yaml:"welcome_message"`
}

type Company struct {
	ID        string     `json:"id" yaml:"-"`
	About     About      `json:"about" yaml:"about"`
	Contact   Contact    `json:"contact" yaml:"contact"`
	System    SystemInfo `json:"system" yaml:"system"`
	CreatedAt time.Time  `json:"created_at" yaml:"-"`
	UpdatedAt time.Time  `json:"updated_at" yaml:"-"`
}

type Milestone struct {
	ID        string    `json:"id" yaml:"-"`
	Target    string    `json:"target" yaml:"target"`
	Product   string    `json:"product" yaml:"product"`
	Function  string    `json:"function" yaml:"function"`
	Status    string    `json:"status" yaml:"status"`
	Priority  int       `json:"priority" yaml:"priority"`
	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}

// Roadmap is the /api/roadmap payload.
type Roadmap struct {
	Milestones []Milestone `json:"milestones"`
}

type Member struct {
	ID           string    `json:"id" yaml:"-"`
	Name         string    `json:"name" yaml:"name"`
	Role         string    `json:"role" yaml:"role"`
	Focus        string    `json:"focus" yaml:"focus"`
	Bio          string    `json:"bio,omitempty" yaml:"bio,omitempty"`
	Image        string    `json:"image,omitempty" yaml:"image,omitempty"`
	LinkedIn     string    `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	IsFounder    bool      `json:"is_founder" yaml:"is_founder"`
	DisplayOrder int       `json:"display_order" yaml:"display_order"`
	CreatedAt    time.Time `json:"created_at" yaml:"-"`
	UpdatedAt    time.Time `json:"updated_at" yaml:"-"`
}

// Team is the /api/team payload.
type Team struct {
	Founders []Member `json:"founders"`
}

type Funding struct {
	Stage   string   `json:"stage" yaml:"stage"`
	Target  string   `json:"target" yaml:"target"`
	Focus   string   `json:"focus" yaml:"focus"`
	Market  string   `json:"market" yaml:"market"`
	Seeking []string `json:"seeking" yaml:"seeking"`
}

// Inquiry types and lifecycle states.
const (
	InquiryFunding = "funding"
	InquiryDemo    = "demo"
	InquiryGeneral = "general"

	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusScheduled = "scheduled"
	StatusClosed    = "closed"

	DefaultSource = "terminal_website"
)

// InquiryCreate is the body of POST /api/inquiries.
type InquiryCreate struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company,omitempty"`
	Message     string `json:"message"`
	InquiryType string `json:"inquiry_type"`
}

type Inquiry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Company     string    `json:"company,omitempty"`
	Message     string    `json:"message"`
	InquiryType string    `json:"inquiry_type"`
	Status      string    `json:"status"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InquiryReceipt is returned after an inquiry is stored.
type InquiryReceipt struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// CommandEvent records one executed terminal command.
type CommandEvent struct {
	ID           string    `json:"id"`
	Command      string    `json:"command"`
	Timestamp    time.Time `json:"timestamp"`
	SessionID    string    `json:"session_id"`
	UserAgent    string    `json:"user_agent,omitempty"`
	ResponseTime *int      `json:"response_time,omitempty"`
}

// CommandTrack is the body of POST /api/analytics/command.
type CommandTrack struct {
	Command      string `json:"command"`
	SessionID    string `json:"session_id"`
	UserAgent    string `json:"user_agent,omitempty"`
	ResponseTime *int   `json:"response_time,omitempty"`
}

type CommandStat struct {
	Command  string    `json:"command"`
	Count    int       `json:"count"`
	LastUsed time.Time `json:"last_used"`
}

// Snapshot is the data pre-fetched at start-up. Any member may be nil when
// its fetch failed.
type Snapshot struct {
	Company *Company
	Roadmap *Roadmap
	Team    *Team
	// Funding falls back to DefaultFunding when nil.
	Funding *Funding
}
