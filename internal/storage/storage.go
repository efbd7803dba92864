package storage

// File is an uploaded file decoupled from the transport layer. Handlers read
// multipart parts into a File; services pass it to a store.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}
