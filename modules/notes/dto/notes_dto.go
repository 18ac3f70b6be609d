package dto

type SaveNoteRequest struct {
	ID      string   `json:"id,omitempty"`
	UserID  string   `json:"userId"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// MissingField returns the name of the first absent required field, or "".
func (r *SaveNoteRequest) MissingField() string {
	switch {
	case r.UserID == "":
		return "userId"
	case r.Title == "":
		return "title"
	}
	return ""
}

type SaveNoteResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

type TagListResponse struct {
	Tags []string `json:"tags"`
}

type UploadAttachmentResponse struct {
	Success  bool   `json:"success"`
	ID       string `json:"id"`
	Filename string `json:"filename"`
}
