package models

// All lists every model in migration order
func All() []interface{} {
	return []interface{}{
		&ApplicationModel{},
		&JobApplicationModel{},
		&EventModel{},
		&TicketModel{},
		&MessageModel{},
		&GalleryImageModel{},
		&ResourceModel{},
	}
}
