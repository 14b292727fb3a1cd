package core

// Entity identifies a simulated actor for the lifetime of a loaded level, zero is never issued
type Entity uint64
