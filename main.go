// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/mokhairy2019/Kratos-sub001/cmd"

func main() {
	cmd.Execute()
}
