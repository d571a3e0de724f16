package request

// CustomerRequest represents customer create/update fields
type CustomerRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=255"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone" binding:"omitempty,max=30"`
	Address *string `json:"address"`
}

// SupplierRequest represents supplier create/update fields
type SupplierRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=30"`
	Address       *string `json:"address"`
}

// ListFilterRequest represents common list filter parameters
type ListFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
