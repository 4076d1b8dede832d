package core

// TimerID identifies a scheduled one-shot timer, zero means none
type TimerID uint64
