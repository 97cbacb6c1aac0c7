package pkg

import (
	"time"

	"github.com/google/uuid"
)

// schema.go mirrors the public schema of the hosted database.  The database
// owns these tables: it enforces keys, foreign keys and nullability.  The
// Row shapes are what a select returns, Insert shapes carry only what a
// caller must or may supply, and Update shapes make every column optional.
// In Update shapes a nil pointer leaves a NOT NULL column untouched; nullable
// columns use Nullable so that an update can also clear them.

// UserRow is a row of the users table.
type UserRow struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	Nom           string     `json:"nom"`
	Prenom        *string    `json:"prenom"`
	Role          string     `json:"role"`
	Adresse       *string    `json:"adresse"`
	Age           *int       `json:"age"`
	AvatarURL     *string    `json:"avatar_url"`
	DateNaissance *string    `json:"date_naissance"`
	Organisation  *string    `json:"organisation"`
	Poids         *float64   `json:"poids"`
	Pointure      *string    `json:"pointure"`
	Sexe          *string    `json:"sexe"`
	Specialite    *string    `json:"specialite"`
	Taille        *float64   `json:"taille"`
	Telephone     *string    `json:"telephone"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

// UserInsert creates a users row.  The id is required because users rows
// share their id with the auth provider's account.
type UserInsert struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	Nom           string     `json:"nom"`
	Prenom        *string    `json:"prenom,omitempty"`
	Role          *string    `json:"role,omitempty"`
	Adresse       *string    `json:"adresse,omitempty"`
	Age           *int       `json:"age,omitempty"`
	AvatarURL     *string    `json:"avatar_url,omitempty"`
	DateNaissance *string    `json:"date_naissance,omitempty"`
	Organisation  *string    `json:"organisation,omitempty"`
	Poids         *float64   `json:"poids,omitempty"`
	Pointure      *string    `json:"pointure,omitempty"`
	Sexe          *string    `json:"sexe,omitempty"`
	Specialite    *string    `json:"specialite,omitempty"`
	Taille        *float64   `json:"taille,omitempty"`
	Telephone     *string    `json:"telephone,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type UserUpdate struct {
	ID            *uuid.UUID          `json:"id,omitempty"`
	Email         *string             `json:"email,omitempty"`
	Nom           *string             `json:"nom,omitempty"`
	Prenom        Nullable[string]    `json:"prenom,omitzero"`
	Role          *string             `json:"role,omitempty"`
	Adresse       Nullable[string]    `json:"adresse,omitzero"`
	Age           Nullable[int]       `json:"age,omitzero"`
	AvatarURL     Nullable[string]    `json:"avatar_url,omitzero"`
	DateNaissance Nullable[string]    `json:"date_naissance,omitzero"`
	Organisation  Nullable[string]    `json:"organisation,omitzero"`
	Poids         Nullable[float64]   `json:"poids,omitzero"`
	Pointure      Nullable[string]    `json:"pointure,omitzero"`
	Sexe          Nullable[string]    `json:"sexe,omitzero"`
	Specialite    Nullable[string]    `json:"specialite,omitzero"`
	Taille        Nullable[float64]   `json:"taille,omitzero"`
	Telephone     Nullable[string]    `json:"telephone,omitzero"`
	CreatedAt     Nullable[time.Time] `json:"created_at,omitzero"`
	UpdatedAt     Nullable[time.Time] `json:"updated_at,omitzero"`
}

// PatientRow is a row of the patients table.  UserID links a patient to the
// practitioner account that registered them.
type PatientRow struct {
	ID            uuid.UUID  `json:"id"`
	UserID        *uuid.UUID `json:"user_id"`
	Nom           string     `json:"nom"`
	Prenom        string     `json:"prenom"`
	Email         string     `json:"email"`
	Adresse       string     `json:"adresse"`
	Age           int        `json:"age"`
	AvatarURL     *string    `json:"avatar_url"`
	DateNaissance string     `json:"date_naissance"`
	Organisation  string     `json:"organisation"`
	Poids         float64    `json:"poids"`
	Pointure      string     `json:"pointure"`
	Sexe          string     `json:"sexe"`
	Specialite    string     `json:"specialite"`
	Taille        float64    `json:"taille"`
	Telephone     string     `json:"telephone"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type PatientInsert struct {
	ID            *uuid.UUID `json:"id,omitempty"`
	UserID        *uuid.UUID `json:"user_id,omitempty"`
	Nom           string     `json:"nom"`
	Prenom        string     `json:"prenom"`
	Email         string     `json:"email"`
	Adresse       string     `json:"adresse"`
	Age           int        `json:"age"`
	AvatarURL     *string    `json:"avatar_url,omitempty"`
	DateNaissance string     `json:"date_naissance"`
	Organisation  string     `json:"organisation"`
	Poids         float64    `json:"poids"`
	Pointure      string     `json:"pointure"`
	Sexe          string     `json:"sexe"`
	Specialite    string     `json:"specialite"`
	Taille        float64    `json:"taille"`
	Telephone     string     `json:"telephone"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type PatientUpdate struct {
	ID            *uuid.UUID          `json:"id,omitempty"`
	UserID        Nullable[uuid.UUID] `json:"user_id,omitzero"`
	Nom           *string             `json:"nom,omitempty"`
	Prenom        *string             `json:"prenom,omitempty"`
	Email         *string             `json:"email,omitempty"`
	Adresse       *string             `json:"adresse,omitempty"`
	Age           *int                `json:"age,omitempty"`
	AvatarURL     Nullable[string]    `json:"avatar_url,omitzero"`
	DateNaissance *string             `json:"date_naissance,omitempty"`
	Organisation  *string             `json:"organisation,omitempty"`
	Poids         *float64            `json:"poids,omitempty"`
	Pointure      *string             `json:"pointure,omitempty"`
	Sexe          *string             `json:"sexe,omitempty"`
	Specialite    *string             `json:"specialite,omitempty"`
	Taille        *float64            `json:"taille,omitempty"`
	Telephone     *string             `json:"telephone,omitempty"`
	CreatedAt     Nullable[time.Time] `json:"created_at,omitzero"`
	UpdatedAt     Nullable[time.Time] `json:"updated_at,omitzero"`
}

// SessionRow is one scan visit of a patient.
type SessionRow struct {
	ID        uuid.UUID  `json:"id"`
	PatientID uuid.UUID  `json:"patient_id"`
	Status    string     `json:"status"`
	Valid     bool       `json:"valid"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type SessionInsert struct {
	ID        *uuid.UUID `json:"id,omitempty"`
	PatientID uuid.UUID  `json:"patient_id"`
	Status    *string    `json:"status,omitempty"`
	Valid     *bool      `json:"valid,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type SessionUpdate struct {
	ID        *uuid.UUID          `json:"id,omitempty"`
	PatientID *uuid.UUID          `json:"patient_id,omitempty"`
	Status    *string             `json:"status,omitempty"`
	Valid     *bool               `json:"valid,omitempty"`
	CreatedAt Nullable[time.Time] `json:"created_at,omitzero"`
	UpdatedAt Nullable[time.Time] `json:"updated_at,omitzero"`
}

// FootScanRow references the captured images of one foot.
type FootScanRow struct {
	ID        uuid.UUID  `json:"id"`
	SessionID uuid.UUID  `json:"session_id"`
	Angle     string     `json:"angle"`
	SideView  string     `json:"side_view"`
	TopView   string     `json:"top_view"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type FootScanInsert struct {
	ID        *uuid.UUID `json:"id,omitempty"`
	SessionID uuid.UUID  `json:"session_id"`
	Angle     string     `json:"angle"`
	SideView  string     `json:"side_view"`
	TopView   string     `json:"top_view"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type FootScanUpdate struct {
	ID        *uuid.UUID          `json:"id,omitempty"`
	SessionID *uuid.UUID          `json:"session_id,omitempty"`
	Angle     *string             `json:"angle,omitempty"`
	SideView  *string             `json:"side_view,omitempty"`
	TopView   *string             `json:"top_view,omitempty"`
	CreatedAt Nullable[time.Time] `json:"created_at,omitzero"`
	UpdatedAt Nullable[time.Time] `json:"updated_at,omitzero"`
}

// FootMetricRow holds the measured length and width of one foot.
type FootMetricRow struct {
	ID         uuid.UUID  `json:"id"`
	SessionID  uuid.UUID  `json:"session_id"`
	Side       string     `json:"side"`
	Longueur   float64    `json:"longueur"`
	Largeur    float64    `json:"largeur"`
	Confidence float64    `json:"confidence"`
	CreatedAt  *time.Time `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

type FootMetricInsert struct {
	ID         *uuid.UUID `json:"id,omitempty"`
	SessionID  uuid.UUID  `json:"session_id"`
	Side       string     `json:"side"`
	Longueur   float64    `json:"longueur"`
	Largeur    float64    `json:"largeur"`
	Confidence float64    `json:"confidence"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

type FootMetricUpdate struct {
	ID         *uuid.UUID          `json:"id,omitempty"`
	SessionID  *uuid.UUID          `json:"session_id,omitempty"`
	Side       *string             `json:"side,omitempty"`
	Longueur   *float64            `json:"longueur,omitempty"`
	Largeur    *float64            `json:"largeur,omitempty"`
	Confidence *float64            `json:"confidence,omitempty"`
	CreatedAt  Nullable[time.Time] `json:"created_at,omitzero"`
	UpdatedAt  Nullable[time.Time] `json:"updated_at,omitzero"`
}

// MedicalQuestionnaireRow is one answered question of a session.
type MedicalQuestionnaireRow struct {
	ID        uuid.UUID  `json:"id"`
	SessionID uuid.UUID  `json:"session_id"`
	Question  string     `json:"question"`
	Reponse   string     `json:"reponse"`
	Condition *string    `json:"condition"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type MedicalQuestionnaireInsert struct {
	ID        *uuid.UUID `json:"id,omitempty"`
	SessionID uuid.UUID  `json:"session_id"`
	Question  string     `json:"question"`
	Reponse   string     `json:"reponse"`
	Condition *string    `json:"condition,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type MedicalQuestionnaireUpdate struct {
	ID        *uuid.UUID          `json:"id,omitempty"`
	SessionID *uuid.UUID          `json:"session_id,omitempty"`
	Question  *string             `json:"question,omitempty"`
	Reponse   *string             `json:"reponse,omitempty"`
	Condition Nullable[string]    `json:"condition,omitzero"`
	CreatedAt Nullable[time.Time] `json:"created_at,omitzero"`
	UpdatedAt Nullable[time.Time] `json:"updated_at,omitzero"`
}

type NotificationRow struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Read      *bool      `json:"read"`
	CreatedAt *time.Time `json:"created_at"`
}

type NotificationInsert struct {
	ID        *uuid.UUID `json:"id,omitempty"`
	UserID    uuid.UUID  `json:"user_id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Read      *bool      `json:"read,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type NotificationUpdate struct {
	ID        *uuid.UUID          `json:"id,omitempty"`
	UserID    *uuid.UUID          `json:"user_id,omitempty"`
	Title     *string             `json:"title,omitempty"`
	Body      *string             `json:"body,omitempty"`
	Read      Nullable[bool]      `json:"read,omitzero"`
	CreatedAt Nullable[time.Time] `json:"created_at,omitzero"`
}

// ChatMessageRow is one chat turn.  IsUser distinguishes the user's turns
// from assistant replies.
type ChatMessageRow struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Content   string     `json:"content"`
	IsUser    bool       `json:"is_user"`
	Status    string     `json:"status"`
	CreatedAt *time.Time `json:"created_at"`
}

type ChatMessageInsert struct {
	ID        *uuid.UUID `json:"id,omitempty"`
	UserID    uuid.UUID  `json:"user_id"`
	Content   string     `json:"content"`
	IsUser    *bool      `json:"is_user,omitempty"`
	Status    *string    `json:"status,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type ChatMessageUpdate struct {
	ID        *uuid.UUID          `json:"id,omitempty"`
	UserID    *uuid.UUID          `json:"user_id,omitempty"`
	Content   *string             `json:"content,omitempty"`
	IsUser    *bool               `json:"is_user,omitempty"`
	Status    *string             `json:"status,omitempty"`
	CreatedAt Nullable[time.Time] `json:"created_at,omitzero"`
}

// Table names of the public schema.
const (
	TableUsers                 = "users"
	TablePatients              = "patients"
	TableSessions              = "sessions"
	TableFootScans             = "foot_scans"
	TableFootMetrics           = "foot_metrics"
	TableMedicalQuestionnaires = "medical_questionnaires"
	TableNotifications         = "notifications"
	TableChatMessages          = "chat_messages"
)

// Tables lists every table in dependency order: a table only references
// tables listed before it.
var Tables = []string{
	TableUsers,
	TablePatients,
	TableSessions,
	TableFootScans,
	TableFootMetrics,
	TableMedicalQuestionnaires,
	TableNotifications,
	TableChatMessages,
}

// Relationship describes one declared foreign key.
type Relationship struct {
	ForeignKeyName     string   `json:"foreign_key_name"`
	Table              string   `json:"table"`
	Columns            []string `json:"columns"`
	IsOneToOne         bool     `json:"is_one_to_one"`
	ReferencedRelation string   `json:"referenced_relation"`
	ReferencedColumns  []string `json:"referenced_columns"`
}

// Relationships holds the foreign keys of the public schema.
var Relationships = []Relationship{
	{"patients_user_id_fkey", TablePatients, []string{"user_id"}, false, TableUsers, []string{"id"}},
	{"sessions_patient_id_fkey", TableSessions, []string{"patient_id"}, false, TablePatients, []string{"id"}},
	{"foot_scans_session_id_fkey", TableFootScans, []string{"session_id"}, false, TableSessions, []string{"id"}},
	{"foot_metrics_session_id_fkey", TableFootMetrics, []string{"session_id"}, false, TableSessions, []string{"id"}},
	{"medical_questionnaires_session_id_fkey", TableMedicalQuestionnaires, []string{"session_id"}, false, TableSessions, []string{"id"}},
	{"notifications_user_id_fkey", TableNotifications, []string{"user_id"}, false, TableUsers, []string{"id"}},
	{"chat_messages_user_id_fkey", TableChatMessages, []string{"user_id"}, false, TableUsers, []string{"id"}},
}

// RelationshipsOf returns the foreign keys declared on table.
func RelationshipsOf(table string) []Relationship {
	var out []Relationship
	for _, rel := range Relationships {
		if rel.Table == table {
			out = append(out, rel)
		}
	}
	return out
}

// InsertUserToAuthArgs are the arguments of the insert_user_to_auth stored
// procedure, which creates an auth account and returns its id.
type InsertUserToAuthArgs struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
