package dto

// SaveEventRequest creates or (when ID is set) updates a manual event.
type SaveEventRequest struct {
	ID      string `json:"id,omitempty"`
	UserID  string `json:"userId"`
	Title   string `json:"title"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Color   string `json:"color"`
	Carpeta string `json:"carpeta"`
}

// MissingField returns the name of the first absent required field, or "".
func (r *SaveEventRequest) MissingField() string {
	switch {
	case r.UserID == "":
		return "userId"
	case r.Title == "":
		return "title"
	case r.Start == "":
		return "start"
	case r.End == "":
		return "end"
	case r.Color == "":
		return "color"
	case r.Carpeta == "":
		return "carpeta"
	}
	return ""
}

type SaveEventResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
}

type FolderListResponse struct {
	Folders []string `json:"folders"`
}
