package validators

import (
	"net"
	"strings"
)

// HasValidFormat es el chequeo barato previo al lookup de red.
func HasValidFormat(email string) bool {
	at := strings.LastIndex(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}

// IsEmailDomainValid comprueba que el dominio resuelva (MX o A).
func IsEmailDomainValid(email string) bool {
	if !HasValidFormat(email) {
		return false
	}

	domain := email[strings.LastIndex(email, "@")+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}
	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}
	return false
}
