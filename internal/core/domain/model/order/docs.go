// Package order contains the Order aggregate, the center of the fulfillment
// lifecycle. An order is created at checkout from cart line-item snapshots and
// moves forward through a fixed status graph, driven by a mix of elapsed-time
// edges (the simulation tick) and role-gated actor commands.
package order
