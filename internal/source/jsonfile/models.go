package jsonfile

// Mailbox is the on-disk dump format: one JSON document holding the
// exported newsletter emails.
type Mailbox struct {
	Messages []Message `json:"messages"`
}

type Message struct {
	Subject string `json:"subject"`
	From    string `json:"from"`
	Date    string `json:"date"`
	HTML    string `json:"html"`
}
