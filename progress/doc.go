/*
Package progress implements the progress line stream of a digrank pipeline run.

Many concurrent producers (every nameserver query and every probe) emit lines
to a single [Stream], while a single consumer receives them from the channel
returned by [New]. The stream buffers without limit, so that a slow consumer
never stalls a producer:

	producers --Line/Text--> [Stream] --> <-chan string

Multi-line text blocks emitted using [Stream.Text] are delivered without lines
from other producers in between.

# Acknowledgements

The buffering is based on [gammazero/deque], which is also what
gammazero/workerpool uses for its waiting queue.

[gammazero/deque]: https://github.com/gammazero/deque
*/
package progress
