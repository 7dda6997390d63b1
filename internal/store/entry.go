package store

// Entry is a leaf credential record. Every field is optional, and the empty
// string is the absent state: clearing a field and never setting it are
// indistinguishable, both here and in the serialized document. An Entry has
// no identity of its own; it is identified by the name it is stored under
// in its owning container.
type Entry struct {
	username string
	password string
	url      string
}

// NewEntry creates an entry with the given fields. Any of them may be empty.
func NewEntry(username, password, url string) *Entry {
	return &Entry{username: username, password: password, url: url}
}

func (e *Entry) Username() string { return e.username }

func (e *Entry) Password() string { return e.password }

func (e *Entry) URL() string { return e.url }

// SetUsername sets the username. An empty value clears the field.
func (e *Entry) SetUsername(username string) { e.username = username }

// SetPassword sets the password. An empty value clears the field.
func (e *Entry) SetPassword(password string) { e.password = password }

// SetURL sets the URL. An empty value clears the field.
func (e *Entry) SetURL(url string) { e.url = url }
