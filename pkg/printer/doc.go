// Package printer provides the receipt builder.
//
// A Context collects a receipt as an ordered queue of actions. Every
// builder call renders its output immediately and appends it to the queue;
// nothing touches the backend until Execute or ExecuteAsync runs the queue.
//
//	ctx, err := printer.New(printer.Options{Config: cfg, Backend: b})
//	if err != nil {
//		return err
//	}
//	ctx.AddText("ACME STORE", types.TextConfig{Align: types.AlignCenter}).
//		AddSeparator().
//		AddTable(func(t *table.Builder) {
//			t.AddRow(layout.NewCell("Tea"), layout.NewCell("3.20").Width(6).Align(types.AlignRight))
//		}).
//		FeedLine(2)
//	report, err := ctx.Execute(context.Background())
//
// Builder calls never return an error directly. The first invalid call is
// remembered, makes every later builder call a no-op and is returned by Err
// and by Execute.
package printer
