// Package scheduling computes bookable consultation slots.
//
// Given the busy intervals of a calendar, GenerateSlots walks every business
// day in a date range and yields fixed-length slots inside business hours that
// neither start in the past nor overlap a busy interval. Intervals are
// half-open: a slot ending exactly when a meeting starts is free.
package scheduling
