/*
Package style holds the raw material of CSS styling: property values,
property groups and property maps, together with the registry of
properties the engine knows about (their group, initial value and
whether they inherit).

Property maps are attached to the nodes of a styled tree. They hold
specified values only; computing values (inheritance, relative units)
is the job of package css.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style
