package rounds

import "errors"

// Sentinel kinds for round lookup errors.
var (
	ErrUnknownRound = errors.New("unknown round config")
)
