package domain

// ServiceCatalog maps each offered service to its duration in minutes.
// The catalog is fixed at process start; services are keyed by their
// exact display name (case-sensitive).
var ServiceCatalog = map[string]int{
	"Manicure":                         60,
	"Pedicure":                         60,
	"Esmaltação comum":                 40,
	"Aplicação de alongamento em gel":  210,
	"Banho em gel":                     150,
	"Postiça realista":                 120,
	"Blindagem":                        90,
	"Manutenção de alongamento em gel": 120,
	"Remoção de gel":                   40,
	"Reposição":                        30,
	"Troca de formato":                 30,
	"Encapsulada (par)":                20,
	"Adesivo (par)":                    10,
	"Mix de decorações":                15,
	"Hiperdecorada":                    25,
}

// ServiceDuration returns the duration in minutes for the given service.
// Unknown service names are NOT an error: they fall back to
// DefaultServiceDurationMinutes and are treated as standard-length
// appointments. This permissive lookup is a documented business contract.
func ServiceDuration(serviceName string) int {
	if duration, ok := ServiceCatalog[serviceName]; ok {
		return duration
	}
	return DefaultServiceDurationMinutes
}
