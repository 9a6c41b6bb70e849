package storage

import (
	"errors"
	"time"

	"github.com/julianstephens/momentum/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique name or pair already exists.
	ErrDuplicate = errors.New("already exists")
)

// Provider is the persistence boundary shared by the sqlite and postgres backends.
//
// Day arguments are civil dates in YYYY-MM-DD form and range bounds are inclusive.
// Insert-if-absent methods report whether a row was created; losing a race to a
// concurrent writer is reported as (false, nil).
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	GetConfigPath() string
	// Migrate applies pending schema migrations, reporting progress through logFn.
	Migrate(logFn func(string)) (int, error)
	// SchemaVersion returns the applied and the latest embedded schema versions.
	SchemaVersion() (current int, latest int, err error)

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Users
	AddUser(models.User) error
	GetUser(id string) (models.User, error)
	GetUserByName(username string) (models.User, error)
	GetAllUsers() ([]models.User, error)

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(ownerID, name string) (models.Habit, error)
	GetHabitsForOwner(ownerID string) ([]models.Habit, error)
	DeleteHabit(id string) error

	// Completions
	AddCompletion(models.Completion) (bool, error)
	HasCompletion(habitID, startDay, endDay string) (bool, error)
	GetCompletionsForHabit(habitID string) ([]models.Completion, error)
	GetCompletionsInRange(habitID, startDay, endDay string) ([]models.Completion, error)
	DeleteCompletionsInRange(habitID, startDay, endDay string) (int64, error)
	CountCompletionsForOwner(ownerID string) (int, error)

	// Badges
	AwardBadge(models.Badge) (bool, error)
	GetBadges(ownerID string) ([]models.Badge, error)

	// Applications
	AddApplication(models.Application) error
	GetApplication(id string) (models.Application, error)
	GetApplicationsForOwner(ownerID string) ([]models.Application, error)
	UpdateApplicationStatus(id string, status models.ApplicationStatus, at time.Time) error
	// CountApplications counts all of the owner's applications when status is empty.
	CountApplications(ownerID string, status models.ApplicationStatus) (int, error)
	CountApplicationsDueBefore(ownerID string, status models.ApplicationStatus, day string) (int, error)

	// Contacts
	AddContact(models.Contact) error
	GetContactsForOwner(ownerID string) ([]models.Contact, error)
	CountContacts(ownerID string) (int, error)

	// Friendships
	AddFriendship(models.Friendship) error
	// GetFriendshipBetween matches the pair in either direction.
	GetFriendshipBetween(userA, userB string) (models.Friendship, error)
	UpdateFriendshipStatus(id string, status models.FriendshipStatus, at time.Time) error
	GetFriendshipsForUser(userID string) ([]models.Friendship, error)
	HasAcceptedFriendship(userID string) (bool, error)

	// Integrity checks used by doctor
	CountDuplicateCompletions() (int, error)
	CountOrphanCompletions() (int, error)
}
