package redis

import "fmt"

// Key prefix for all booking data
const keyPrefix = "courtbook"

// playersKey returns the Redis key holding the player collection.
// The key name matches the original localStorage layout.
func playersKey() string {
	return fmt.Sprintf("%s:jugadores", keyPrefix)
}

// reservationsKey returns the Redis key holding the reservation collection
func reservationsKey() string {
	return fmt.Sprintf("%s:reservas", keyPrefix)
}
