// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"log"
	"strconv"

	"gioui.org/draggable"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// note is payload content that counts how often its drawer was opened.
type note struct {
	th     *material.Theme
	visits int
}

func (n *note) OnEnter(h draggable.Host) {
	n.visits++
}

func (n *note) OnLeave(h draggable.Host) {}

func (n *note) OnPermissionResponse(code int, granted bool) {
	log.Printf("permission %d granted: %v", code, granted)
}

func (n *note) Layout(gtx layout.Context) layout.Dimensions {
	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		l := material.Body1(n.th, fmt.Sprintf("Opened %d times.", n.visits))
		return l.Layout(gtx)
	})
}

func (n *note) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(n.visits)), nil
}

func (n *note) UnmarshalText(b []byte) error {
	v, err := strconv.Atoi(string(b))
	if err != nil {
		return err
	}
	n.visits = v
	return nil
}
