package entity

// CarouselRow fila del carrusel promocional. Image es la lista de URLs (en Appwrite, texto JSON).
type CarouselRow struct {
	ID      string
	ImageID string
	Images  []string
}

// CarouselImage imagen individual ya aplanada para mostrar.
type CarouselImage struct {
	URL     string
	RowID   string
	ImageID string
}

// Notification push enviada a los clientes de la app mediante una función de Appwrite.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
