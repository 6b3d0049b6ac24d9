package models

// SeedUser is a user record as read from a seed source, credentials included.
type SeedUser struct {
	ID               string `json:"id" gorm:"primaryKey"`
	Username         string `json:"username" gorm:"uniqueIndex;not null"`
	Name             string `json:"name"`
	Surname          string `json:"surname"`
	ProfileImg       string `json:"profileImg"`
	RegistrationDate string `json:"registrationDate"`
	Password         string `json:"password" gorm:"not null"`
	Position         int    `json:"-" gorm:"not null;default:0"`
}

func (SeedUser) TableName() string { return "seed_users" }

// SeedPost holds both top-level posts and replies; replies carry a ParentPostID.
type SeedPost struct {
	ID           string `json:"id" gorm:"primaryKey"`
	UserID       string `json:"userId" gorm:"index;not null"`
	ParentPostID string `json:"parentPostId" gorm:"index"`
	Content      string `json:"content" gorm:"type:text"`
	PublishDate  string `json:"publishDate"`
	EditedDate   string `json:"editedDate"`
	ImageURL     string `json:"imageUrl"`
	NLikes       int    `json:"nLikes" gorm:"default:0"`
	Position     int    `json:"-" gorm:"not null;default:0"`
}

func (SeedPost) TableName() string { return "seed_posts" }

// Dataset is everything a seed source yields at startup.
type Dataset struct {
	Users []SeedUser
	Posts []SeedPost
}
