// Package zaphandler adapts a zap.Logger to the handler.Handler
// interface. Levels map one-to-one for Debug through Error; Fatal and
// Panic map to zap's Error level because exiting or panicking is the
// override core's decision, not the output handler's.
package zaphandler
