package models

type Health struct {
	Status  string `json:"status"`
	Schools int    `json:"schools"`
}
