package geoip

// Location ответ geoip-сервиса
type Location struct {
	IP          string `json:"ip"`
	CountryCode string `json:"country_code"`
	Region      string `json:"region"`
	RegionCode  string `json:"region_code"`
	City        string `json:"city"`
}

// IsPuertoRico проверяет, что IP находится в Пуэрто-Рико
func (l *Location) IsPuertoRico() bool {
	return l.CountryCode == "PR"
}
