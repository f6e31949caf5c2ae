package pkg

import "math/rand"

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789" // no easily-confused chars in game codes

func RandString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
