package models

type UserRole string

const (
	RoleFaculty  UserRole = "faculty"
	RoleIncharge UserRole = "incharge"
	RoleWorker   UserRole = "worker"
	RoleAdmin    UserRole = "admin"
)

// CredentialTable describes where a role's accounts live.
type CredentialTable struct {
	Table string
	// LoginColumn is matched against the identifier sent to /login.
	LoginColumn string
	// KeyColumn identifies the row on password change.
	KeyColumn  string
	NameColumn string
}

var credentialTables = map[UserRole]CredentialTable{
	RoleFaculty:  {Table: "faculty", LoginColumn: "email_id", KeyColumn: "faculty_id", NameColumn: "faculty_name"},
	RoleIncharge: {Table: "incharge", LoginColumn: "email_id", KeyColumn: "email_id", NameColumn: "name"},
	RoleWorker:   {Table: "workers", LoginColumn: "mobile_no", KeyColumn: "mobile_no", NameColumn: "name"},
	RoleAdmin:    {Table: "admin", LoginColumn: "email_id", KeyColumn: "email_id", NameColumn: "name"},
}

// ParseRole accepts only the four known role tags.
func ParseRole(s string) (UserRole, bool) {
	r := UserRole(s)
	_, ok := credentialTables[r]
	return r, ok
}

func (r UserRole) Credentials() CredentialTable {
	return credentialTables[r]
}

func (r UserRole) String() string { return string(r) }

// Account is a row of one of the four user tables.
type Account interface {
	Role() UserRole
	// LoginID is the value of the row's login column.
	LoginID() string
	StoredPassword() string
}

// NewAccount returns an empty row of the table backing role.
func NewAccount(role UserRole) Account {
	switch role {
	case RoleFaculty:
		return &Faculty{}
	case RoleIncharge:
		return &Incharge{}
	case RoleWorker:
		return &Worker{}
	case RoleAdmin:
		return &Admin{}
	}
	return nil
}

type Faculty struct {
	FacultyID   string `gorm:"column:faculty_id;primaryKey" json:"faculty_id"`
	FacultyName string `gorm:"column:faculty_name" json:"faculty_name"`
	EmailID     string `gorm:"column:email_id;uniqueIndex" json:"email_id"`
	Password    string `gorm:"column:password;not null" json:"-"`
}

func (Faculty) TableName() string         { return "faculty" }
func (*Faculty) Role() UserRole           { return RoleFaculty }
func (f *Faculty) LoginID() string        { return f.EmailID }
func (f *Faculty) StoredPassword() string { return f.Password }

// Incharge supervises the complaints whose category equals Role.
type Incharge struct {
	Name     string `gorm:"column:name;not null" json:"name"`
	EmailID  string `gorm:"column:email_id;primaryKey" json:"email_id"`
	Category string `gorm:"column:role;index" json:"role"`
	Password string `gorm:"column:password;not null" json:"-"`
}

func (Incharge) TableName() string         { return "incharge" }
func (*Incharge) Role() UserRole           { return RoleIncharge }
func (i *Incharge) LoginID() string        { return i.EmailID }
func (i *Incharge) StoredPassword() string { return i.Password }

type Worker struct {
	Name     string `gorm:"column:name;not null" json:"name"`
	MobileNo string `gorm:"column:mobile_no;primaryKey" json:"mobile_no"`
	Category string `gorm:"column:role;index" json:"role"`
	Password string `gorm:"column:password;not null" json:"-"`
}

func (Worker) TableName() string         { return "workers" }
func (*Worker) Role() UserRole           { return RoleWorker }
func (w *Worker) LoginID() string        { return w.MobileNo }
func (w *Worker) StoredPassword() string { return w.Password }

type Admin struct {
	Name     string `gorm:"column:name;not null" json:"name"`
	EmailID  string `gorm:"column:email_id;primaryKey" json:"email_id"`
	Password string `gorm:"column:password;not null" json:"-"`
}

func (Admin) TableName() string         { return "admin" }
func (*Admin) Role() UserRole           { return RoleAdmin }
func (a *Admin) LoginID() string        { return a.EmailID }
func (a *Admin) StoredPassword() string { return a.Password }
