package cli

import (
	"context"
	"fmt"

	chaindomain "github.com/MMN3003/selene/src/chain/domain"
	"github.com/MMN3003/selene/src/order/domain"
)

type answerKind string

const (
	kindSelect  answerKind = "select"
	kindInput   answerKind = "input"
	kindConfirm answerKind = "confirm"
)

type answer struct {
	kind  answerKind
	index int
	text  string
	yes   bool
	err   error
}

func pick(i int) answer         { return answer{kind: kindSelect, index: i} }
func typed(s string) answer     { return answer{kind: kindInput, text: s} }
func confirm(yes bool) answer   { return answer{kind: kindConfirm, yes: yes} }
func abort(k answerKind) answer { return answer{kind: k, err: ErrAborted} }

// scriptedPrompter replays answers in order and fails on anything unexpected.
type scriptedPrompter struct {
	fail    func(format string, args ...interface{})
	answers []answer
	labels  []string
}

type fataler interface {
	Fatalf(format string, args ...interface{})
}

func newScript(t fataler, answers ...answer) *scriptedPrompter {
	return &scriptedPrompter{fail: t.Fatalf, answers: answers}
}

func (p *scriptedPrompter) next(k answerKind, label string) answer {
	p.labels = append(p.labels, label)
	if len(p.answers) == 0 {
		p.fail("unexpected %s prompt %q", k, label)
		return answer{kind: k, err: ErrAborted}
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	if a.kind != k {
		p.fail("prompt %q: expected %s, script has %s", label, k, a.kind)
	}
	return a
}

func (p *scriptedPrompter) Select(label string, items []string) (int, error) {
	a := p.next(kindSelect, label)
	if a.err == nil && a.index >= len(items) {
		p.fail("select %q: index %d out of %d items", label, a.index, len(items))
	}
	return a.index, a.err
}

func (p *scriptedPrompter) Input(label string) (string, error) {
	a := p.next(kindInput, label)
	return a.text, a.err
}

func (p *scriptedPrompter) Confirm(label string) (bool, error) {
	a := p.next(kindConfirm, label)
	return a.yes, a.err
}

func (p *scriptedPrompter) done() bool { return len(p.answers) == 0 }

// countingDispatcher records calls without a testing.TB so it can run inside rapid.
type countingDispatcher struct {
	submits int
	cancels int
	hash    string
	err     error
	last    domain.EncodedOrder
}

func (d *countingDispatcher) Submit(_ context.Context, order domain.EncodedOrder, _ string) (chaindomain.TxResult, error) {
	d.submits++
	d.last = order
	return chaindomain.TxResult{Hash: d.hash}, d.err
}

func (d *countingDispatcher) Cancel(context.Context, uint64, string, string) (chaindomain.TxResult, error) {
	d.cancels++
	return chaindomain.TxResult{Hash: d.hash}, d.err
}

func (d *countingDispatcher) ExplorerURL(hash string) string {
	return fmt.Sprintf("https://explorer/tx/%s", hash)
}
