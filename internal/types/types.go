// internal/types/types.go
package types

// EntityID — идентификатор сущности (башни или врага)
type EntityID uint64
