package domain

import "time"

// JournalistFrom is the sender identifier used by the journalist role, which
// has no participant hash of its own.
const JournalistFrom = "journalist"

// Participant is a registered sender known to the relay. The hash is all the
// relay ever learns about a participant.
type Participant struct {
	Hash         string    `json:"hash"`
	LastActiveAt time.Time `json:"lastActiveAt"`
}

// FileBundle is the reassembled content of a chunked upload. Content is the
// sender's ciphertext joined back together in chunk-index order; the relay
// never inspects it.
type FileBundle struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType,omitempty"`
	FileSize int64  `json:"fileSize,omitempty"`
	Content  string `json:"content"`
}

// Message is one stored relay message, either direct or file-bearing.
// Immutable once appended; the message store is its sole owner.
type Message struct {
	ID              string      `json:"id"`
	From            string      `json:"from"`
	To              string      `json:"to,omitempty"`
	Payload         string      `json:"encryptedData,omitempty"`
	CreatedAt       time.Time   `json:"timestamp"`
	HasFiles        bool        `json:"hasFiles,omitempty"`
	SenderPublicKey string      `json:"userPublicKey,omitempty"`
	File            *FileBundle `json:"fileData,omitempty"`
}

// Chunk is one piece of an in-flight chunked file upload.
type Chunk struct {
	From     string `json:"from"`
	Index    int    `json:"chunkIndex"`
	Total    int    `json:"totalChunks"`
	Data     string `json:"chunkData"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType,omitempty"`
	FileSize int64  `json:"fileSize,omitempty"`
}

// Identity holds a client's local identity: the anonymous participant hash
// plus a Curve25519 pair for opening sealed replies.
type Identity struct {
	Hash    string   `json:"hash"`
	Public  [32]byte `json:"public"`
	Private [32]byte `json:"private"`
}
