package request

type CreateHotelRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=150"`
	Location    string   `json:"location" validate:"required,max=150"`
	Description string   `json:"description" validate:"max=2000"`
	Amenities   []string `json:"amenities" validate:"omitempty,dive,required"`
	Images      []string `json:"images" validate:"omitempty,dive,required"`
}

// UpdateHotelRequest only touches the fields that are present.
type UpdateHotelRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=150"`
	Location    *string  `json:"location" validate:"omitempty,max=150"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Amenities   []string `json:"amenities" validate:"omitempty,dive,required"`
}

// AddHotelImagesRequest appends image URLs or storage paths.
type AddHotelImagesRequest struct {
	Images []string `json:"images" validate:"required,min=1,dive,required"`
}

type HotelListRequest struct {
	PaginatedRequest
	Location string
}
