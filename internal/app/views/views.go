package views

import (
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/SoYuDev/petalth-crm/internal/app/session"
	"github.com/SoYuDev/petalth-crm/internal/petalth"
)

//go:embed templates/*.html
var templateFS embed.FS

// Layout carries the fields every page shares with the shell partials.
type Layout struct {
	Title     string
	ActiveNav string
	User      *session.Record
}

// AuthFormPage backs the login and register forms. Values echoes what the
// user typed so a failed submit does not wipe the form.
type AuthFormPage struct {
	Layout
	Values map[string]string
	Errors map[string]string
	Alert  string
}

type HomePage struct {
	Layout
}

type PetView struct {
	ID        int64
	Name      string
	PhotoURL  string
	BirthDate string
	AgeYears  int
}

type PetsPage struct {
	Layout
	OwnerID int64
	Pets    []PetView
	Alert   string
}

type VeterinariansPage struct {
	Layout
	Veterinarians []petalth.Veterinarian
	Alert         string
}

type AppointmentView struct {
	When             string
	ServiceName      string
	Status           petalth.AppointmentStatus
	PetName          string
	VeterinarianName string
}

type AppointmentsPage struct {
	Layout
	Appointments []AppointmentView
	Alert        string
}

var funcMap = template.FuncMap{
	"upper":       strings.ToUpper,
	"formatDate":  formatDate,
	"statusBadge": statusBadge,
}

// Templates parses the embedded page and partial templates. Pages are
// addressed by file name, partials by their define blocks.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html"))
}

func formatDate(value string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			if layout == "2006-01-02" {
				return t.Format("Jan 2, 2006")
			}
			return t.Format("Jan 2, 2006 15:04")
		}
	}
	return value
}

func statusBadge(status petalth.AppointmentStatus) string {
	switch status {
	case petalth.AppointmentCompleted:
		return "badge badge-completed"
	case petalth.AppointmentCancelled:
		return "badge badge-cancelled"
	default:
		return "badge badge-pending"
	}
}
