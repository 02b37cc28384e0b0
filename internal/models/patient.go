package models

// Patient represents a patient record kept by the infirmary.
type Patient struct {
	BaseModel
	FirstName  string `gorm:"size:100;not null" json:"firstName"`
	LastName   string `gorm:"size:100;not null" json:"lastName"`
	MiddleName string `gorm:"size:100" json:"middleName,omitempty"`
	Suffix     string `gorm:"size:10" json:"suffix,omitempty"`
	Gbox       string `gorm:"size:255;not null" json:"gbox"`
	Address    string `gorm:"size:255;not null" json:"address"`
	Department string `gorm:"size:100;not null" json:"department"`
	Course     string `gorm:"size:100;not null" json:"course"`
	Image      string `gorm:"size:512" json:"image,omitempty"` // external URL
	IDNum      int64  `gorm:"not null" json:"idNum"`
	Sex        string `gorm:"size:20;not null" json:"sex"`
}
