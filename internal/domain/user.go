package domain

// Role discriminates user variants in the roster.
type Role string

const (
	RoleReporter  Role = "REPORTER"
	RoleDeveloper Role = "DEVELOPER"
	RoleManager   Role = "MANAGER"
)

// Expertise enumerates developer specialization areas.
type Expertise string

const (
	ExpertiseFrontend  Expertise = "FRONTEND"
	ExpertiseBackend   Expertise = "BACKEND"
	ExpertiseDevops    Expertise = "DEVOPS"
	ExpertiseDesign    Expertise = "DESIGN"
	ExpertiseDB        Expertise = "DB"
	ExpertiseFullstack Expertise = "FULLSTACK"
)

// Seniority enumerates developer seniority levels.
type Seniority string

const (
	SeniorityJunior Seniority = "JUNIOR"
	SeniorityMid    Seniority = "MID"
	SenioritySenior Seniority = "SENIOR"
)

// User is a roster entry, a tagged union over Role. Developer-only fields are
// zero for reporters and managers; Subordinates is manager-only. Users are
// loaded once per run and never created by commands.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`

	// DEVELOPER
	ExpertiseArea    Expertise `json:"expertiseArea,omitempty"`
	Seniority        Seniority `json:"seniority,omitempty"`
	HireDate         string    `json:"hireDate,omitempty"`
	PerformanceScore float64   `json:"performanceScore,omitempty"`

	// MANAGER
	Subordinates []string `json:"subordinates,omitempty"`

	notifications []string
}

// Notify appends a message to the user's mailbox.
func (u *User) Notify(message string) {
	u.notifications = append(u.notifications, message)
}

// DrainNotifications returns the mailbox contents and clears it.
func (u *User) DrainNotifications() []string {
	out := u.notifications
	u.notifications = nil
	if out == nil {
		out = []string{}
	}
	return out
}
