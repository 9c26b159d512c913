package domain

type Product struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"` // Lts ou Kg
}

type Employee struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Status string `json:"status"`
}
