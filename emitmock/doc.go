/*
Package emitmock provides a mock implementation of the taglog.Emitter
interface for testing host applications.

It's designed for tests where you want to assert exactly which records a
component emits without writing to logcat or a console stream. No real log
destinations were harmed in the making of these tests.

Why use emitmock?

  - Inspect emissions: every Info call is recorded in order with its title and message.
  - Hook emissions: plug in an Observer to assert or react as records arrive.
  - Stay quiet: nothing is written anywhere, so test output remains clean.

Quick start

	m := emitmock.New(emitmock.Config{})

	// Inject into a component under test
	component := NewComponent(m)
	component.Connect()

	if len(m.Calls) != 1 || m.Calls[0].Title != "Sync" {
		t.Fatalf("unexpected emissions: %+v", m.Calls)
	}

Tips

  - Use table-driven tests and Reset between cases to reuse one mock.
  - Keep Observer hooks small and focused-record, assert, return.
  - Prefer asserting on Calls unless you need to intercept mid-flight.
*/
package emitmock
