package stream

import "context"

type OptionKey string

const BufferOptionKey OptionKey = "buffer_options"

type BufferOptions struct {
	Size int
}

// WithBuffer makes the channels created by this package buffered with size
// slots. Non-positive sizes mean unbuffered.
func WithBuffer(ctx context.Context, size int) context.Context {
	return context.WithValue(ctx, BufferOptionKey, BufferOptions{Size: size})
}

func GetBufferSize(ctx context.Context, defaultSize int) int {
	options, ok := ctx.Value(BufferOptionKey).(BufferOptions)
	if ok {
		if options.Size < 0 {
			return 0
		}
		return options.Size
	}
	return defaultSize
}
