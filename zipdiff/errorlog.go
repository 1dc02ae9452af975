package zipdiff

import "strings"

// shard is the unit of work owned by a single worker. Results and failures
// stay local to the shard until every worker has finished.
type shard struct {
	names  []string
	diffs  []FileDifference
	errors []error
}

// merge concatenates the per-shard results and error logs.
func merge(shards []shard) ([]FileDifference, []error) {
	var nd, ne int
	for i := range shards {
		nd += len(shards[i].diffs)
		ne += len(shards[i].errors)
	}
	diffs := make([]FileDifference, 0, nd)
	var errs []error
	if ne > 0 {
		errs = make([]error, 0, ne)
	}
	for i := range shards {
		diffs = append(diffs, shards[i].diffs...)
		errs = append(errs, shards[i].errors...)
	}
	return diffs, errs
}

// joinErrors renders an error log one message per line.
func joinErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}
