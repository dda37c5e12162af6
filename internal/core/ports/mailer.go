package ports

// Notification is one outbound email.
type Notification struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers a notification. Implementations may retry internally;
// a returned error means delivery ultimately failed.
type Mailer interface {
	Send(n Notification) error
}

// Notifier accepts notifications for asynchronous delivery off the request
// path. Enqueue never blocks the caller on SMTP.
type Notifier interface {
	Enqueue(n Notification)
}
