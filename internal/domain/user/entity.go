package user

import "time"

// User is a Telegram user who shared a phone contact. The id is the Telegram user id.
type User struct {
	id        int64
	chatID    int64
	phone     Phone
	firstName string
	createdAt time.Time
}

func NewUser(id, chatID int64, phone Phone, firstName string, now time.Time) (*User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}
	return &User{
		id:        id,
		chatID:    chatID,
		phone:     phone,
		firstName: firstName,
		createdAt: now.UTC(),
	}, nil
}

func (u *User) ID() int64            { return u.id }
func (u *User) ChatID() int64        { return u.chatID }
func (u *User) Phone() Phone         { return u.phone }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) CreatedAt() time.Time { return u.createdAt }

type Dog struct {
	id        int64
	userID    int64
	name      DogName
	createdAt time.Time
}

func NewDog(userID int64, name DogName, now time.Time) (*Dog, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	return &Dog{userID: userID, name: name, createdAt: now.UTC()}, nil
}

func ReconstructDog(id, userID int64, name string, createdAt time.Time) *Dog {
	return &Dog{id: id, userID: userID, name: DogName{value: name}, createdAt: createdAt}
}

func (d *Dog) ID() int64            { return d.id }
func (d *Dog) UserID() int64        { return d.userID }
func (d *Dog) Name() DogName        { return d.name }
func (d *Dog) CreatedAt() time.Time { return d.createdAt }
