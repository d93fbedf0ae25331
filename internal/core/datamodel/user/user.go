package user

type User struct {
	ID       int64  `gorm:"primaryKey"`
	Email    string `gorm:"column:email;uniqueIndex;not null"`
	Password string `gorm:"column:password;not null"`
	Role     string `gorm:"column:role;default:user"`
}

func (User) TableName() string {
	return "users"
}
