// Package domain contains the core entities of the TaskHub application:
// users and the tasks they own. Entities validate themselves and carry
// no persistence or transport concerns.
package domain
