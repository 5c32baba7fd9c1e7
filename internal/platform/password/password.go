package password

import "golang.org/x/crypto/bcrypt"

// Hash genera un digest bcrypt con salt aleatorio.
// Dos llamadas con el mismo password producen hashes distintos.
func Hash(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

// Verify compara password contra un hash bcrypt.
// Un hash malformado cuenta como verificación fallida, nunca panic.
func Verify(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
