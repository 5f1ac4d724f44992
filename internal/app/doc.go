// Package app provides application services that own the todo collection and
// coordinate between domain logic and infrastructure through port interfaces.
package app
