package models

// Note is a vault note as listed by the remote API. The content itself is a
// vault blob fetched separately and never cached in plaintext.
type Note struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}
