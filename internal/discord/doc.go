// Package discord forwards matched events to a Discord webhook.
//
// Each event becomes a single message with one embed: the description is the
// same "<timestamp> - <raw line>" text the journal records, and the embed
// color is the integer form of the event's configured hex color.
//
// The client is deliberately fire-and-forget. There is no retry, no queue,
// and no rate-limit bookkeeping: a failed send is reported to the caller,
// which logs it and moves on. Dropping a notification is acceptable; stalling
// the tail loop is not.
package discord
