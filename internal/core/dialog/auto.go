package dialog

// AutoAnswer makes c answer every request as soon as it is shown, for
// non-interactive runs. It replaces any change callback already set.
func AutoAnswer(c *Confirmer, confirmed bool) {
	c.SetOnChange(func(s State) {
		if !s.Visible || s.PendingID == 0 {
			return
		}
		if confirmed {
			c.HandleConfirm()
		} else {
			c.HandleCancel()
		}
	})
}
