package domain

// Status indica si el usuario tiene una sesión activa.
type Status string

const (
	StatusOnline  Status = "ONLINE"
	StatusOffline Status = "OFFLINE"
)

// User representa una cuenta registrada.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	DisplayName  string `json:"display_name,omitempty"`
	PasswordHash string `json:"-"`
	Status       Status `json:"status"`
	Token        string `json:"token"`
	CreationDate Date   `json:"creation_date"`
	BirthDate    *Date  `json:"birth_date,omitempty"`
}
