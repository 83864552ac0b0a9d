// ABOUTME: Canonical CRM record shapes every integration normalizes into
// ABOUTME: Defines Contact, Deal, Activity, Company and their enum labels
package models

type Contact struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	Company     string        `json:"company"`
	Position    string        `json:"position"`
	Status      ContactStatus `json:"status"`
	LastContact string        `json:"lastContact"`
}

type Deal struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Value       float64   `json:"value"` // in Rupiah
	ValueFmt    string    `json:"valueFmt"`
	Stage       DealStage `json:"stage"`
	Owner       string    `json:"owner"` // initials
	Probability int       `json:"probability"`
	CloseDate   string    `json:"closeDate"`
}

type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Contact     string       `json:"contact"`
	Company     string       `json:"company"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Completed   bool         `json:"completed"`
}

type Company struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Industry     string        `json:"industry"`
	Website      string        `json:"website"`
	Phone        string        `json:"phone"`
	Address      string        `json:"address"`
	ContactCount int           `json:"contactCount"`
	DealCount    int           `json:"dealCount"`
	Revenue      float64       `json:"revenue"`
	RevenueFmt   string        `json:"revenueFmt"`
	Status       CompanyStatus `json:"status"`
	CreatedAt    string        `json:"createdAt"`
}

type ContactStatus string

const (
	ContactActive   ContactStatus = "Active"
	ContactLead     ContactStatus = "Lead"
	ContactInactive ContactStatus = "Inactive"
)

// ContactStatuses lists the accepted labels; matching is case-sensitive.
var ContactStatuses = []ContactStatus{ContactActive, ContactLead, ContactInactive}

type DealStage string

const (
	StageLead        DealStage = "Lead"
	StageQualified   DealStage = "Qualified"
	StageProposal    DealStage = "Proposal"
	StageNegotiation DealStage = "Negotiation"
	StageClosedWon   DealStage = "Closed Won"
	StageClosedLost  DealStage = "Closed Lost"
)

// DealStages is ordered the way the pipeline is displayed.
var DealStages = []DealStage{
	StageLead,
	StageQualified,
	StageProposal,
	StageNegotiation,
	StageClosedWon,
	StageClosedLost,
}

type ActivityType string

const (
	ActivityCall    ActivityType = "call"
	ActivityEmail   ActivityType = "email"
	ActivityMeeting ActivityType = "meeting"
	ActivityTask    ActivityType = "task"
	ActivityNote    ActivityType = "note"
)

var ActivityTypes = []ActivityType{ActivityCall, ActivityEmail, ActivityMeeting, ActivityTask, ActivityNote}

type CompanyStatus string

const (
	CompanyActive   CompanyStatus = "Active"
	CompanyProspect CompanyStatus = "Prospect"
	CompanyInactive CompanyStatus = "Inactive"
)

var CompanyStatuses = []CompanyStatus{CompanyActive, CompanyProspect, CompanyInactive}

// Placeholders used when a source record leaves a field empty.
const (
	Placeholder        = "-"
	PlaceholderName    = "(Tanpa Nama)"
	PlaceholderTitle   = "(Tanpa Judul)"
	PlaceholderInitial = "?"
)
