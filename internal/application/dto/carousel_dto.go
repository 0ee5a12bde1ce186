package dto

// CarouselImageResponse imagen del carrusel.
type CarouselImageResponse struct {
	URL     string `json:"url"`
	RowID   string `json:"row_id"`
	ImageID string `json:"image_id"`
}

// NotificationRequest notificación push a los clientes de la app.
type NotificationRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NotificationResponse resultado del envío.
type NotificationResponse struct {
	ExecutionID string `json:"execution_id"`
}
