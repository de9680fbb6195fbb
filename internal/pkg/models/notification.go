package models

// Email is one outgoing message
type Email struct {
	To      string
	Subject string
	HTML    string
	Text    string
}
