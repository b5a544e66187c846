package utils

import (
	"strings"

	"gorm.io/gorm"

	"sahayak/models"
)

// JobView is one row of a provider's dashboard: a pending request the
// provider could take, with the client's contact details resolved.
type JobView struct {
	ID            uint   `json:"id"`
	Client        string `json:"client"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	ClientAddress string `json:"address"`
	ClientPhone   string `json:"phone"`
}

// AddressesMatch is the locality proxy: both addresses are lowercased
// and compared for substring containment in either direction. Crude on
// purpose ("NY" matches "Albany") — there is no parsed location model.
func AddressesMatch(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// FindJobs returns the pending requests a provider can act on: exact
// service type match plus overlapping address, in id order. Requests
// whose owning user row is missing are skipped.
func FindJobs(db *gorm.DB, provider *models.Provider) ([]JobView, error) {
	var requests []models.ServiceRequest
	err := db.Preload("Client").
		Where("service_type = ? AND status = ?", provider.ServiceType, models.StatusPending).
		Order("id asc").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}

	jobs := []JobView{}
	for _, req := range requests {
		if req.Client.ID == 0 {
			continue
		}
		if !AddressesMatch(provider.Address, req.Client.Address) {
			continue
		}
		jobs = append(jobs, JobView{
			ID:            req.ID,
			Client:        req.Username,
			Date:          req.Date,
			Time:          req.Time,
			ClientAddress: req.Client.Address,
			ClientPhone:   req.Client.Phone,
		})
	}
	return jobs, nil
}
