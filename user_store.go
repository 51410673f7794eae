package investwise

import (
	"encoding/json"

	"github.com/Welly0007/InvestWise/logger"
)

const userStoreFormat = "investwise/users"

// UserStore specializes the generic store for users. On top of the store
// primitives it enforces entity validation and gives a lookup by user name.
type UserStore struct {
	store *Store[User]
}

func userCodec() lineCodec[User] {
	return lineCodec[User]{
		format:  userStoreFormat,
		marshal: func(u User) ([]byte, error) { return json.Marshal(u) },
		unmarshal: func(b []byte) (User, error) {
			var u User
			err := json.Unmarshal(b, &u)
			return u, err
		},
	}
}

// OpenUserStore loads the user store backed by fileName, creating an empty
// file if none exists.
func OpenUserStore(fileName string) *UserStore {
	return &UserStore{store: openStore(fileName, userCodec())}
}

// Add inserts u after validating it. It returns false, as a reported no-op
// rather than an error, when u is invalid or when a user with the same
// user name already exists.
func (s *UserStore) Add(u User) bool {
	if err := u.Valid(); err != nil {
		logger.Get().Warnw("rejecting invalid user", "userName", u.UserName, "error", err)
		return false
	}
	if !s.store.Add(u) {
		logger.Get().Warnw("user already exists", "userName", u.UserName)
		return false
	}
	return true
}

// Delete removes the user identified by u's user name.
func (s *UserStore) Delete(u User) bool { return s.store.Delete(u) }

// Edit replaces old with new via delete-then-add; see Store.Edit for the
// exact (and preserved) semantics.
func (s *UserStore) Edit(old, new User) bool { return s.store.Edit(old, new) }

// FindUser looks up a user by user name with a linear scan.
func (s *UserStore) FindUser(userName string) (User, bool) {
	for _, u := range s.store.Items() {
		if u.UserName == userName {
			return u, true
		}
	}
	return User{}, false
}

// Users returns all users in insertion order.
func (s *UserStore) Users() []User { return s.store.Items() }

// Len returns the number of users held.
func (s *UserStore) Len() int { return s.store.Len() }

// Clear empties the store and persists the empty sequence. Destructive,
// with no confirmation at this layer.
func (s *UserStore) Clear() { s.store.Clear() }
