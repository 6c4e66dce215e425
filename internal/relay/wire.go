package relay

import "deaddrop/internal/domain"

// Request/response bodies shared by the server handlers and the client.

type registerRequest struct {
	Hash string `json:"hash"`
}

type registerResponse struct {
	Success             bool    `json:"success"`
	JournalistPublicKey *string `json:"journalistPublicKey"`
}

type journalistRequest struct {
	PublicKey string `json:"publicKey"`
	Secret    string `json:"secret"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type messageRequest struct {
	From          string `json:"from"`
	To            string `json:"to,omitempty"`
	EncryptedData string `json:"encryptedData"`
	Timestamp     int64  `json:"timestamp,omitempty"`
	HasFiles      bool   `json:"hasFiles,omitempty"`
	UserPublicKey string `json:"userPublicKey,omitempty"`
}

type messageResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
}

type chunkResponse struct {
	Success  bool `json:"success"`
	Received int  `json:"received"`
	Total    int  `json:"total"`
}

type messagesResponse struct {
	Messages []domain.Message `json:"messages"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

type errorResponse struct {
	Error string `json:"error"`
}
