package notification

type GetListResponse struct {
	ID      int     `json:"id"`
	Type    *string `json:"notification_type"`
	Message *string `json:"message"`
	IsRead  bool    `json:"is_read"`
}
