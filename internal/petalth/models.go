package petalth

// Wire types for the remote Petalth API. JSON field names follow the
// backend's DTOs verbatim, including the Spanish response fields.

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type AuthResponse struct {
	ID      int64  `json:"id"`
	Token   string `json:"token"`
	Email   string `json:"email"`
	Name    string `json:"nombre"`
	Role    string `json:"rol"`
	Message string `json:"mensaje"`
}

type Veterinarian struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Speciality string `json:"speciality"`
}

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "PENDING"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
)

type Appointment struct {
	ID               int64             `json:"id"`
	DateTime         string            `json:"dateTime"`
	ServiceName      string            `json:"serviceName"`
	Status           AppointmentStatus `json:"status"`
	PetName          string            `json:"petName"`
	VeterinarianName string            `json:"veterinarianName"`
}

type Pet struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name"`
	PhotoURL  string `json:"photoUrl,omitempty"`
	BirthDate string `json:"birthDate"`
	Owner     string `json:"owner,omitempty"`
	OwnerID   int64  `json:"ownerId,omitempty"`
}

type PetRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	PhotoURL  string `json:"photoUrl,omitempty"`
	OwnerID   int64  `json:"ownerId"`
}
