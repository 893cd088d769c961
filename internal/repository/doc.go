// Package repository declares the persistence ports the rest of the system
// depends on. Each port has two interchangeable implementations: the plain
// database-backed one (owned by the persistence layer, out of this module)
// and the caching decorator in the cached subpackage. Callers depend only on
// these interfaces.
package repository
