// Package logger builds the zerolog logger shared by every wordbar component.
package logger
